package src

import "time"

// GridCell : One slot of one channel row. Programme is nil for an empty slot.
type GridCell struct {
	Programme *Programme `json:"programme,omitempty"`
	ColStart  time.Time  `json:"colStart"`
	ColEnd    time.Time  `json:"colEnd"`
}

// GridRow : One channel row. HasEPG distinguishes "nothing in this window"
// from "no guide data for this channel at all".
type GridRow struct {
	Channel ChannelStruct `json:"channel"`
	HasEPG  bool          `json:"hasEPG"`
	Cells   []GridCell    `json:"cells"`
}

// Grid : Renderable matrix, recomputed fully on every render
type Grid struct {
	Window WindowSnapshot `json:"window"`
	Rows   []GridRow      `json:"rows"`
}

// Build Guide Grid
//
// Pure composition of channel list, schedule index and time window. A
// programme spanning several slots appears in each of its columns, the
// renderer merges adjacent cells.
func buildGuideGrid(channels []ChannelStruct, index *ScheduleIndex, window WindowSnapshot) (grid Grid) {
	grid.Window = window
	grid.Rows = make([]GridRow, 0, len(channels))

	var slot = time.Duration(window.SlotMinutes) * time.Minute

	for _, channel := range channels {
		var row = GridRow{
			Channel: channel,
			HasEPG:  index.HasData(channel),
			Cells:   make([]GridCell, 0, window.VisibleSlots),
		}

		for i := 0; i < window.VisibleSlots; i++ {
			var colStart = window.Start.Add(time.Duration(i) * slot)
			var colEnd = colStart.Add(slot)

			row.Cells = append(row.Cells, GridCell{
				Programme: index.FindProgramme(channel, colStart, colEnd),
				ColStart:  colStart,
				ColEnd:    colEnd,
			})
		}

		grid.Rows = append(grid.Rows, row)
	}
	return
}
