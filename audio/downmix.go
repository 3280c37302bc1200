package audio

// DownmixMono reduces a buffer to a single channel.
//
// Mono input passes through unchanged. Stereo input is merged one frame at a
// time by averaging the left and right samples; the division truncates
// toward zero, so the result is deterministic across platforms and mirrors
// what the generated array would contain if the merge were done in C. The
// downmix is lossy, callers that care should warn the user before invoking
// it.
func DownmixMono(buf *Buffer) (*Buffer, error) {
	switch buf.Format.Channels {
	case 1:
		return buf, nil
	case 2:
		frames := len(buf.Data) / 2
		mono := make([]int, frames)
		for f := 0; f < frames; f++ {
			l := int64(buf.Data[2*f])
			r := int64(buf.Data[2*f+1])
			// Go integer division truncates toward zero.
			mono[f] = int((l + r) / 2)
		}

		format := buf.Format
		format.Channels = 1

		return &Buffer{Format: format, Data: mono}, nil
	default:
		return nil, ErrUnsupportedChannelLayout
	}
}
