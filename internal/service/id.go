package service

import "github.com/google/uuid"

// Record id prefixes. Ids are minted here so the store stays a dumb
// filter-and-write surface; the prefix makes ids self-describing in logs.
const (
	taskIDPrefix        = "t_"
	eventIDPrefix       = "e_"
	categoryIDPrefix    = "c_"
	importanceIDPrefix  = "i_"
	defaultTaskIDPrefix = "d_"
	statusIDPrefix      = "s_"
)

func newID(prefix string) string {
	return prefix + uuid.New().String()
}
