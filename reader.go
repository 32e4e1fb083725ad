package wordoccur

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

// CountReader counts the tokens of r line by line into acc and returns it.
// A nil acc is replaced by a fresh map. Lines may be of any length.
func CountReader(r io.Reader, t Tokenizer, acc Occurrences) (Occurrences, error) {
	if acc == nil {
		acc = make(Occurrences)
	}
	err := eachLine(r, func(line string) error {
		Count(line, t, acc)
		return nil
	})
	return acc, err
}

// eachLine calls fn for every line of r, trailing newline included.
// The last line is passed even when it has no newline.
func eachLine(r io.Reader, fn func(line string) error) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			if ferr := fn(line); ferr != nil {
				return ferr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "read line")
		}
	}
}
