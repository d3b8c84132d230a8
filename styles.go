// This file is part of Romload.
//
// Romload is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Romload is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Romload.  If not, see <https://www.gnu.org/licenses/>.

package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	label    lipgloss.Style
	value    lipgloss.Style
	native   lipgloss.Style
	swapped  lipgloss.Style
	unknown  lipgloss.Style
	filename lipgloss.Style
	err      lipgloss.Style
}

func newStyles() styles {
	return styles{
		label:    lipgloss.NewStyle().Bold(true).Width(12),
		value:    lipgloss.NewStyle(),
		native:   lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(2)),
		swapped:  lipgloss.NewStyle().Foreground(lipgloss.ANSIColor(3)),
		unknown:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		filename: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(4)),
		err:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(1)),
	}
}
