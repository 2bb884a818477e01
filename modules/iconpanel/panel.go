// Package iconpanel builds a reference panel listing every icon the host
// ships, external icon files and compiled-in images alike, with the string
// needed to use each one.
package iconpanel

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/thoriumgroup/thorium/internal/graph"
)

const (
	// PanelID is the registered panel identity.
	PanelID = "com.thorium.IconPanel"

	// PanelTitle is the display title.
	PanelTitle = "Universal Icons"

	// qrcRoot is the image root for compiled-in icons.
	qrcRoot = ":qrc/images/"

	// batch is how many icons go on one subtab before a new one starts.
	batch = 30
)

// Panel is the icon browser: a flat knob list where Tab knobs open the
// external/internal groups and their subtabs.
type Panel struct {
	knobs []*graph.Knob
}

// New scans dirs for external icon files and assembles the panel. Unreadable
// directories are skipped rather than failing the whole panel.
func New(dirs ...string) *Panel {
	p := &Panel{}
	external := findFileIcons(dirs)

	p.add(graph.NewTabKnob("external_icons", "External Icons"))
	p.addIconList(external, false, true)

	p.add(graph.NewTabKnob("internal_icons", "Internal Icons"))
	p.addIconList(internalIcons, true, false)

	return p
}

// Knobs returns the panel's knobs in display order.
func (p *Panel) Knobs() []*graph.Knob {
	out := make([]*graph.Knob, len(p.knobs))
	copy(out, p.knobs)
	return out
}

// IconCount returns the number of icon entries, tabs excluded.
func (p *Panel) IconCount() int {
	n := 0
	for _, k := range p.knobs {
		if k.Kind() == graph.KindString {
			n++
		}
	}
	return n
}

func (p *Panel) add(k *graph.Knob) { p.knobs = append(p.knobs, k) }

// addIconList lays icons out across subtabs of batch size. Alpha-titled
// lists name each subtab after the first icon's leading letters; otherwise
// subtabs are numbered by offset.
func (p *Panel) addIconList(icons []string, htmlStyle, alphaTitle bool) {
	for i, icon := range icons {
		if i%batch == 0 {
			title := strconv.Itoa(i)
			if alphaTitle {
				title = tabTitle(icon)
			}
			p.add(graph.NewTabKnob(title, title))
		}
		p.add(iconKnob(icon, htmlStyle))
	}
}

// iconKnob renders one icon entry. HTML style links compiled-in images via
// the qrc root; plain style uses the @ lookup against the icon search path.
func iconKnob(icon string, htmlStyle bool) *graph.Knob {
	base := filepath.Base(icon)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	var label string
	if htmlStyle {
		label = fmt.Sprintf("%s <img src=%q>", name, qrcRoot+icon)
	} else {
		label = fmt.Sprintf("%s @%s", name, icon)
	}
	k := graph.NewStringKnob(icon, label)
	k.SetString(label)
	return k
}

func tabTitle(icon string) string {
	if len(icon) < 2 {
		return strings.ToUpper(icon)
	}
	return strings.ToUpper(icon[:1]) + strings.ToLower(icon[1:2])
}

// findFileIcons lists the png icons under dirs, sorted case-insensitively.
func findFileIcons(dirs []string) []string {
	var icons []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if ok, _ := filepath.Match("*.png", e.Name()); ok {
				icons = append(icons, e.Name())
			}
		}
	}
	sort.Slice(icons, func(i, j int) bool {
		return strings.ToLower(icons[i]) < strings.ToLower(icons[j])
	})
	return icons
}
