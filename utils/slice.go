// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package utils

// Filter returns the elements for which keep is true, in order.
func Filter[T any](s []T, keep func(T) bool) []T {
	out := make([]T, 0, len(s))
	for _, el := range s {
		if keep(el) {
			out = append(out, el)
		}
	}
	return out
}

func Map[T, U any](s []T, fn func(T) U) []U {
	out := make([]U, 0, len(s))
	for _, el := range s {
		out = append(out, fn(el))
	}
	return out
}

// Find returns the first element matching the predicate.
func Find[T any](s []T, match func(T) bool) (T, bool) {
	for _, el := range s {
		if match(el) {
			return el, true
		}
	}
	var zero T
	return zero, false
}
