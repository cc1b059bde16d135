package app

import (
	"github.com/scourlabs/scour/internal/dock"
	"github.com/scourlabs/scour/internal/prefs"
	"github.com/scourlabs/scour/internal/tui/overlayview"
	"github.com/scourlabs/scour/internal/tui/theme"
)

// paintDragOverlay draws the drop preview while a drag is active: the
// lit edge band plus an outline of the rect the panel would land in.
// Both come from the same resolver math as the drop itself.
func (m *Model) paintDragOverlay(canvas *overlayview.Canvas, vp dock.Viewport) {
	sess, ok := m.drag.Active()
	if !ok {
		return
	}

	pos, zoned := dock.ZonePosition(sess.Zone)
	if !zoned {
		frame := m.drag.FloatPreview(sess, sess.Current)
		canvas.Outline(frame, theme.OverlayGhostStyle)
		return
	}

	if m.overlayStyle != prefs.OverlayStyleOutline {
		if band, ok := dock.OverlayRect(sess.Zone, vp, m.drag.Threshold()); ok {
			canvas.FillBand(band, "dock "+pos.String(), theme.OverlayBandStyle)
		}
	}

	frac := 0.0
	if p, ok := m.store.Get(sess.PanelID); ok && p.Frac > 0 {
		frac = p.Frac
	}
	if frac <= 0 {
		frac = dock.DefaultDockFraction(pos)
	}
	if target, ok := dock.DockedRect(pos, vp, frac); ok {
		canvas.Outline(target, theme.OverlayFloatStyle)
	}
}
