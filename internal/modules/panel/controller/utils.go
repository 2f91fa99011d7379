package controller

import (
	"errors"
	"strconv"
	"strings"

	"github.com/usabbag/rainparis/internal/modules/panel/types"
)

func parseDistrictID(s string) (types.DistrictID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("missing district id")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New("invalid district id (expected integer)")
	}
	if n < 0 {
		return 0, errors.New("district id must be >= 0")
	}
	return types.DistrictID(n), nil
}
