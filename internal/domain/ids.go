package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Id prefixes keep identifiers of different entity types apart.
const (
	PrefixCustomer    = "cli_"
	PrefixStaff       = "fun_"
	PrefixRoom        = "qua_"
	PrefixReservation = "res_"
)

const randomIDLen = 12

// IDFunc generates a new identifier for the given prefix.
type IDFunc func(prefix string) string

// NewID returns prefix + base-36 milliseconds + a random component.
func NewID(prefix string) string {
	return newIDAt(prefix, time.Now())
}

func newIDAt(prefix string, now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	rnd := strings.ReplaceAll(uuid.NewString(), "-", "")[:randomIDLen]
	return prefix + ts + rnd
}
