package search

import (
	"cmp"
	"slices"
	"strings"
)

// Sort orders items in place and keeps the original order between equal keys.
// An unknown or empty key sorts by id; entities without ids keep their order.
// Unreadable check-in dates go last in either direction.
func Sort[T any](items []T, key SortKey, dir Direction) {
	compare := comparator[T](key)
	if compare == nil {
		return
	}

	slices.SortStableFunc(items, func(a, b T) int {
		if key == SortCheckIn {
			if res := unreadableLast(a, b); res != 0 {
				return res
			}
		}

		res := compare(a, b)
		if dir == Desc {
			return -res
		}

		return res
	})
}

func comparator[T any](key SortKey) func(a, b T) int {
	switch key {
	case SortCheckIn:
		return func(a, b T) int {
			left, lok := any(a).(Dated)
			right, rok := any(b).(Dated)
			if !lok || !rok {
				return 0
			}

			leftIn, _ := left.Stay()
			rightIn, _ := right.Stay()

			return leftIn.Compare(rightIn)
		}
	case SortPrice:
		return func(a, b T) int {
			left, lok := any(a).(Priced)
			right, rok := any(b).(Priced)
			if !lok || !rok {
				return 0
			}

			return left.Price().Cmp(right.Price())
		}
	case SortType:
		return func(a, b T) int {
			left, lok := any(a).(Typed)
			right, rok := any(b).(Typed)
			if !lok || !rok {
				return 0
			}

			return strings.Compare(strings.ToLower(left.Type()), strings.ToLower(right.Type()))
		}
	default:
		var zero T
		if _, ok := any(zero).(Identified); !ok {
			return nil
		}

		return func(a, b T) int {
			return cmp.Compare(any(a).(Identified).Identity(), any(b).(Identified).Identity())
		}
	}
}

func unreadableLast[T any](a, b T) int {
	left, lok := any(a).(Dated)
	right, rok := any(b).(Dated)
	if !lok || !rok {
		return 0
	}

	leftIn, _ := left.Stay()
	rightIn, _ := right.Stay()

	switch {
	case leftIn.Valid() == rightIn.Valid():
		return 0
	case leftIn.Valid():
		return -1
	default:
		return 1
	}
}
