package dto

import (
	"hotelmanager/shared"
	"hotelmanager/shared/constant"
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

// QueryParams is the raw listing state sent by a screen. Values are kept as text;
// the search package decides what they mean.
type QueryParams struct {
	Page     int      `json:"page"`
	Limit    int      `json:"limit"`
	SortBy   string   `json:"sort"`
	SortDir  string   `json:"dir"`
	Search   string   `json:"search"`
	Status   string   `json:"status"`
	Quick    string   `json:"quick"`
	Start    string   `json:"startDate"`
	End      string   `json:"endDate"`
	Types    []string `json:"type"`
	MinPrice string   `json:"minPrice"`
	MaxPrice string   `json:"maxPrice"`
	Role     string   `json:"role"`
}

// FromRequest populates QueryParams from the HTTP request. A missing page becomes
// the first page and a missing limit becomes defaultLimit.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, cfg.Search.RoomPageSize)
//
// Room types may be repeated (?type=Suite&type=Single) or comma separated.
func (q *QueryParams) FromRequest(r *http.Request, defaultLimit int) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToLower(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	q.Search = strings.TrimSpace(queryParams.Get(constant.RequestParamSearch))
	q.Status = strings.ToLower(strings.TrimSpace(queryParams.Get(constant.RequestParamStatus)))
	q.Quick = strings.ToLower(strings.TrimSpace(queryParams.Get(constant.RequestParamQuick)))
	q.Start = queryParams.Get(constant.RequestParamStart)
	q.End = queryParams.Get(constant.RequestParamEnd)
	q.MinPrice = queryParams.Get(constant.RequestParamMinPrice)
	q.MaxPrice = queryParams.Get(constant.RequestParamMaxPrice)
	q.Role = strings.ToUpper(strings.TrimSpace(queryParams.Get(constant.RequestParamRole)))

	q.Types = nil
	for _, value := range queryParams[constant.RequestParamType] {
		q.Types = append(q.Types, shared.SplitList(value)...)
	}

	if q.Page == 0 {
		q.Page = constant.DefaultValuePage
	}

	if q.Limit == 0 {
		q.Limit = defaultLimit
	}
}
