package wallio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// validate is safe for concurrent use and caches struct metadata.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(problemShape, Problem{})
	return v
}

// problemShape checks that Rows is an H×W rectangle.
func problemShape(sl validator.StructLevel) {
	p := sl.Current().Interface().(Problem)
	if p.Width == 0 {
		return
	}
	if len(p.Rows) != p.Height {
		sl.ReportError(p.Rows, "Rows", "Rows", "rowcount", strconv.Itoa(p.Height))
		return
	}
	for i, row := range p.Rows {
		if utf8.RuneCountInString(row) != p.Width {
			sl.ReportError(row, fmt.Sprintf("Rows[%d]", i), "Rows", "rowwidth", strconv.Itoa(p.Width))
		}
	}
}

// Validate checks p and returns an error wrapping ErrInvalidProblem that
// lists every failed constraint.
func Validate(p *Problem) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidProblem, strings.Join(msgs, "; "))
}

// ReadProblem reads one problem from r and validates it.
//
// Steps:
//  1. Collect four header integers from the leading lines. Text after
//     the fourth integer on the same line is the start of the first row.
//  2. If W > 0, read H non-blank lines; all whitespace is dropped from
//     each line and what remains is the row.
//  3. Validate sizes, prices and the row shape.
//
// Returns ErrMalformedHeader, ErrTruncated, ErrInvalidProblem, or the
// reader's error.
func ReadProblem(r io.Reader) (*Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	// 1) Header
	var header []string
	var pending string
	for len(header) < 4 && sc.Scan() {
		fields := strings.Fields(sc.Text())
		n := min(4-len(header), len(fields))
		header = append(header, fields[:n]...)
		pending = strings.Join(fields[n:], "")
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wallio: read header: %w", err)
	}
	if len(header) == 0 {
		return nil, ErrTruncated
	}
	if len(header) != 4 {
		return nil, fmt.Errorf("%w: got %q", ErrMalformedHeader, header)
	}
	var nums [4]int64
	for i, f := range header {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedHeader, f, err)
		}
		nums[i] = n
	}
	p := &Problem{Height: int(nums[0]), Width: int(nums[1]), Double: nums[2], Simple: nums[3]}
	if p.Height < 0 || p.Width < 0 {
		return nil, Validate(p)
	}

	// 2) Rows
	if p.Width > 0 {
		// H comes from untrusted input, so rows grow by append only.
		p.Rows = []string{}
		if pending != "" && p.Height > 0 {
			p.Rows = append(p.Rows, pending)
		}
		for len(p.Rows) < p.Height && sc.Scan() {
			row := stripSpace(sc.Text())
			if row == "" {
				continue
			}
			p.Rows = append(p.Rows, row)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("wallio: read rows: %w", err)
		}
		if len(p.Rows) < p.Height {
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrTruncated, len(p.Rows), p.Height)
		}
	}

	// 3) Validate
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// stripSpace removes every whitespace rune from s.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
