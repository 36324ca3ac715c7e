package nolo

import (
	"log/slog"
)

// Report tag bytes.
const (
	tagControllers = 0xa5
	tagHMD         = 0xa6
)

// ReportKind classifies a report by its leading tag byte. Unknown kinds keep
// the raw tag around so it can be logged instead of silently dropped.
type ReportKind struct {
	kind int
	tag  byte
}

const (
	kindUnknown = iota
	kindControllers
	kindHMD
)

func classifyReport(tag byte) ReportKind {
	switch tag {
	case tagControllers:
		return ReportKind{kind: kindControllers, tag: tag}
	case tagHMD:
		return ReportKind{kind: kindHMD, tag: tag}
	}
	return ReportKind{kind: kindUnknown, tag: tag}
}

// dispatch routes one complete report to the decoder, slicing the fixed
// per-device windows out of the buffer. Anything but a full-size report is
// discarded: every window offset below assumes reportSize bytes.
func (d *Device) dispatch(buf []byte) {
	if len(buf) != reportSize {
		slog.Warn("discarding short report", slog.Int("size", len(buf)))
		return
	}

	switch k := classifyReport(buf[0]); k.kind {
	case kindControllers:
		d.decoder.Decode(Controller0, buf[controller0Offset:controller0Offset+controllerLength], &d.states[Controller0])
		d.decoder.Decode(Controller1, buf[controller1Offset:controller1Offset+controllerLength], &d.states[Controller1])

	case kindHMD:
		d.decoder.Decode(HMD, buf[hmdMarkerOffset:hmdMarkerOffset+hmdMarkerLength], &d.states[HMD])
		d.decoder.Decode(BaseStation, buf[baseStationOffset:baseStationOffset+baseStationLength], &d.states[BaseStation])

	default:
		slog.Warn("unknown report tag", slog.Int("tag", int(k.tag)))
	}
}
