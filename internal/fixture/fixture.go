package fixture

import (
	"bufio"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// DefaultRows is the number of data rows written after the header.
const DefaultRows = 100

// Header is the first record of every fixture.
var Header = []string{"a", "b", "c"}

// Generate creates (or truncates) the file at path and fills it with the
// header followed by rows lines of the form "i,i,i".
func Generate(path string, rows int) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create fixture %s", path)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "close fixture %s", path)
		}
	}()

	w := bufio.NewWriter(file)
	w.WriteString("a,b,c\n")

	buf := make([]byte, 0, 32)
	for i := 0; i < rows; i++ {
		n := strconv.Itoa(i)
		buf = buf[:0]
		buf = append(buf, n...)
		buf = append(buf, ',')
		buf = append(buf, n...)
		buf = append(buf, ',')
		buf = append(buf, n...)
		buf = append(buf, '\n')
		w.Write(buf)
	}

	// bufio.Writer keeps the first write error and reports it here.
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "write fixture %s", path)
	}

	return nil
}
