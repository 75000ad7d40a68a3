package variables

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ParseColor validates a color for a Color variable. Named colors are the
// terminal names tcell knows; "#rgb"/"#rrggbb" forms are normalised to
// lowercase "#rrggbb".
func ParseColor(input string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return "", fmt.Errorf("no color given")
	}

	if strings.HasPrefix(name, "#") {
		hex := expandShortHex(name)
		if len(hex) != 7 {
			return "", fmt.Errorf("invalid color `%s'", input)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return "", fmt.Errorf("invalid color `%s'", input)
		}
		return c.Hex(), nil
	}

	if _, ok := tcell.ColorNames[name]; !ok {
		return "", fmt.Errorf("invalid color `%s'", input)
	}
	return name, nil
}

// ColorNames returns every named color, sorted, for prompt completion.
func ColorNames() []string {
	names := make([]string, 0, len(tcell.ColorNames))
	for name := range tcell.ColorNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// ColorHex returns the "#rrggbb" form of a color accepted by ParseColor.
func ColorHex(input string) (string, error) {
	name, err := ParseColor(input)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(name, "#") {
		return name, nil
	}
	rgb := tcell.ColorNames[name].Hex()
	if rgb < 0 {
		return "", fmt.Errorf("color `%s' has no RGB value", input)
	}
	return fmt.Sprintf("#%06x", rgb), nil
}
