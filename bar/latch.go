package bar

import "github.com/sirupsen/logrus"

// ApplyShowHideLatch compares each panel's previous shown/hidden state
// against its freshly resolved status and invokes the panel's show/hide
// hooks exactly on transitions. Hooks are collected first and invoked after
// the full list has been walked (hide hooks before show hooks), and every
// hook failure is logged and swallowed: visibility transitions must never
// abort a repaint.
func ApplyShowHideLatch(panels []*Panel, statuses []PanelStatus, log *logrus.Logger) {
	var toHide, toShow []*DrawInfo

	for i, p := range panels {
		if p.DrawInfo == nil {
			continue
		}
		shown := statuses[i] == StatusShown
		if p.lastStatus && !shown {
			toHide = append(toHide, p.DrawInfo)
		}
		if !p.lastStatus && shown {
			toShow = append(toShow, p.DrawInfo)
		}
		p.lastStatus = shown
	}

	for _, d := range toHide {
		if d.HideFn == nil {
			continue
		}
		if err := d.HideFn(); err != nil {
			log.WithError(err).Warn("panel hide hook failed")
		}
	}
	for _, d := range toShow {
		if d.ShowFn == nil {
			continue
		}
		if err := d.ShowFn(); err != nil {
			log.WithError(err).Warn("panel show hook failed")
		}
	}
}
