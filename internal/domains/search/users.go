package search

import (
	"hotelmanager/shared/calendar"
	"hotelmanager/shared/validator"
	"strings"
)

// Member is implemented by user accounts listed on the admin users screen.
type Member interface {
	Searchable
	MemberRole() string
}

type UserCriteria struct {
	Search   string `json:"search"`
	Role     string `json:"role"     validate:"omitempty,oneof=USER ADMIN"`
	Page     int    `json:"page"     validate:"gte=0"`
	PageSize int    `json:"pageSize" validate:"gte=0"`
}

type UserResult[T Member] struct {
	Items []T            `json:"-"`
	Page  Page[T]        `json:"page"`
	Total int            `json:"total"`
	Roles map[string]int `json:"roles"`
	Empty bool           `json:"empty"`
}

// FilterUsers searches name and email, then filters by role. Role counts are taken
// before the role filter.
func FilterUsers[T Member](users []T, criteria UserCriteria) (UserResult[T], error) {
	found, _ := Apply(users, Criteria{Search: criteria.Search}, calendar.Date{})

	res := UserResult[T]{
		Total: len(found.Items),
		Roles: make(map[string]int),
	}

	filtered := make([]T, 0, len(found.Items))
	for _, user := range found.Items {
		role := strings.ToUpper(user.MemberRole())
		res.Roles[role]++

		if criteria.Role == "" || strings.EqualFold(criteria.Role, role) {
			filtered = append(filtered, user)
		}
	}

	res.Items = filtered
	res.Empty = len(filtered) == 0

	page, err := Paginate(filtered, criteria.Page, criteria.PageSize)
	res.Page = page

	return res, err
}

func (c UserCriteria) Validate() error {
	return validator.ValidateStruct(&c)
}
