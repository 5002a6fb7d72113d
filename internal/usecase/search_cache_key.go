package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const (
	jobsSearchKeyPrefix = "jobs:search:"
	jobsLockKeyPrefix   = "jobs:lock:"
	jobsSearchPattern   = jobsSearchKeyPrefix + "*"
)

type jobSearchCacheKeyInput struct {
	Title    string `json:"title"`
	Category string `json:"category"`
	Location string `json:"location"`
	Page     int    `json:"page"`
	Limit    int    `json:"limit"`
}

func normalizeSearchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

// JobsSearchCacheKey expects params with defaults already applied so that
// equivalent requests share one entry.
func JobsSearchCacheKey(params JobSearchParams) string {
	in := jobSearchCacheKeyInput{
		Title:    normalizeSearchValue(params.Title),
		Category: strings.TrimSpace(params.Category),
		Location: normalizeSearchValue(params.Location),
		Page:     params.Page,
		Limit:    params.Limit,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	h := hex.EncodeToString(sum[:])
	return jobsSearchKeyPrefix + h
}

func JobsSearchLockKey(searchKey string) string {
	searchKey = strings.TrimSpace(searchKey)
	if strings.HasPrefix(searchKey, jobsSearchKeyPrefix) {
		return jobsLockKeyPrefix + strings.TrimPrefix(searchKey, jobsSearchKeyPrefix)
	}
	return jobsLockKeyPrefix + searchKey
}
