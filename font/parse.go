package font

import "io"
import "io/fs"
import "os"
import "strings"

import "golang.org/x/image/font/sfnt"
import "github.com/pkg/errors"

// Similar to [sfnt.Parse](), but also including the font name
// in the returned values. The bytes must not be modified while
// the font is in use.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*sfnt.Font, string, error) {
	newFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", errors.Wrap(err, "parse font") }
	name, err := Name(newFont)
	return newFont, name, err
}

// Parses the font at the given path. Supported formats are .ttf and
// .otf.
func ParseFromPath(path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) { return nil, "", errors.Errorf("invalid font path %q", path) }
	file, err := os.Open(path)
	if err != nil { return nil, "", errors.Wrapf(err, "open font %q", path) }
	return parseAndClose(file, path)
}

// Same as [ParseFromPath](), but for embedded filesystems.
func ParseFromFS(filesys fs.FS, path string) (*sfnt.Font, string, error) {
	if !hasValidFontExtension(path) { return nil, "", errors.Errorf("invalid font path %q", path) }
	file, err := filesys.Open(path)
	if err != nil { return nil, "", errors.Wrapf(err, "open font %q", path) }
	return parseAndClose(file, path)
}

func parseAndClose(file io.ReadCloser, path string) (*sfnt.Font, string, error) {
	fontBytes, err := io.ReadAll(file)
	if err != nil {
		_ = file.Close()
		return nil, "", errors.Wrapf(err, "read font %q", path)
	}
	if err := file.Close(); err != nil { return nil, "", errors.Wrapf(err, "close font %q", path) }
	return ParseFromBytes(fontBytes)
}

// Whether the path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	return strings.HasSuffix(path, ".ttf") || strings.HasSuffix(path, ".otf")
}
