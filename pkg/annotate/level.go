package annotate

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/charlie0129/batticon/pkg/statusline"
)

// ParseLevel reads the battery level from the percentage field of b, for
// example 87 from "87%". The last character is taken as the unit and dropped
// whatever it is.
func ParseLevel(b *statusline.Block) (int, error) {
	percentage, err := b.GetString("percentage")
	if err != nil {
		return 0, errors.Wrap(ErrMissingPercentage, err.Error())
	}

	return parsePercentage(percentage)
}

func parsePercentage(s string) (int, error) {
	if s == "" {
		return 0, errors.Wrap(ErrInvalidPercentage, "empty value")
	}

	_, size := utf8.DecodeLastRuneInString(s)
	number := strings.TrimSpace(s[:len(s)-size])

	level, err := strconv.Atoi(number)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidPercentage, "%q", s)
	}

	return level, nil
}
