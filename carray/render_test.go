// SPDX-License-Identifier: EPL-2.0

package carray

import (
	"errors"
	"strings"
	"testing"

	"github.com/ik5/pcm2c/audio"
)

func monoBuffer(bitDepth int, data []int) *audio.Buffer {
	return &audio.Buffer{
		Format: audio.Format{
			SampleRate: 44100,
			Channels:   1,
			BitDepth:   bitDepth,
			Encoding:   audio.EncodingInteger,
		},
		Data: data,
	}
}

func TestRender_Mono8BitDecimal(t *testing.T) {
	t.Parallel()

	buf := monoBuffer(8, []int{10, -5})

	out, err := Render(buf, Options{ArrayName: "beep", NoComment: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "#define BEEP_SAMPLE_NO 2\n\nconst int8_t beep[] = {\n\t 10, -5,\n};"
	if out.Body != want {
		t.Errorf("Render() body = %q, want %q", out.Body, want)
	}

	if out.Header != "" {
		t.Errorf("Render() header = %q, want empty", out.Header)
	}
}

func TestRender_ElementTypePerBitDepth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		ctype    string
	}{
		{1, "int8_t"}, {8, "int8_t"},
		{9, "int16_t"}, {16, "int16_t"},
		{17, "int32_t"}, {24, "int32_t"}, {32, "int32_t"},
	}

	for _, tt := range tests {
		buf := monoBuffer(tt.bitDepth, []int{0})

		out, err := Render(buf, Options{ArrayName: "x", NoComment: true})
		if err != nil {
			t.Fatalf("Render() bitDepth=%d error = %v", tt.bitDepth, err)
		}

		decl := "const " + tt.ctype + " x[] = {"
		if !strings.Contains(out.Body, decl) {
			t.Errorf("Render() bitDepth=%d body lacks %q:\n%s", tt.bitDepth, decl, out.Body)
		}
	}
}

func TestRender_RowsOfEight(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 7, 8, 9, 16, 17, 100} {
		data := make([]int, count)
		for i := range data {
			data[i] = i
		}

		out, err := Render(monoBuffer(16, data), Options{ArrayName: "rows", NoComment: true})
		if err != nil {
			t.Fatalf("Render() count=%d error = %v", count, err)
		}

		// Literal count must equal the sample count.
		if got := strings.Count(out.Body, ","); got != count {
			t.Errorf("count=%d: %d literals, want %d", count, got, count)
		}

		// Every row except possibly the last holds exactly eight literals.
		body := out.Body[strings.Index(out.Body, "{")+1 : strings.LastIndex(out.Body, "}")]
		rows := strings.Split(strings.Trim(body, "\n"), "\n")
		for i, row := range rows {
			literals := strings.Count(row, ",")
			if i < len(rows)-1 && literals != samplesPerLine {
				t.Errorf("count=%d row %d: %d literals, want %d", count, i, literals, samplesPerLine)
			}
			if i == len(rows)-1 {
				wantLast := count % samplesPerLine
				if wantLast == 0 {
					wantLast = samplesPerLine
				}
				if literals != wantLast {
					t.Errorf("count=%d last row: %d literals, want %d", count, literals, wantLast)
				}
			}
		}
	}
}

func TestRender_SizeSymbol(t *testing.T) {
	t.Parallel()

	out, err := Render(monoBuffer(16, make([]int, 42)), Options{ArrayName: "alarm tone", NoComment: true})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.Contains(out.Body, "#define ALARM_TONE_SAMPLE_NO 42\n") {
		t.Errorf("Render() body lacks size symbol:\n%s", out.Body)
	}

	if !strings.Contains(out.Body, "const int16_t alarm_tone[] = {") {
		t.Errorf("Render() body lacks sanitized declaration:\n%s", out.Body)
	}
}

func TestRender_HexTwosComplement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bitDepth int
		sample   int
		want     string
	}{
		{16, -1, " 0xffff,"},
		{16, 10, " 0xa,"},
		{8, -1, " 0xff,"},
		{8, -128, " 0x80,"},
		{32, -1, " 0xffffffff,"},
		{24, -1, " 0xffffffff,"},
		{16, 0, " 0x0,"},
	}

	for _, tt := range tests {
		out, err := Render(monoBuffer(tt.bitDepth, []int{tt.sample}), Options{
			ArrayName: "hex",
			NoComment: true,
			Base:      Hex,
		})
		if err != nil {
			t.Fatalf("Render() error = %v", err)
		}

		if !strings.Contains(out.Body, tt.want) {
			t.Errorf("bitDepth=%d sample=%d: body %q lacks %q", tt.bitDepth, tt.sample, out.Body, tt.want)
		}
	}
}

func TestRender_Comment(t *testing.T) {
	t.Parallel()

	buf := monoBuffer(16, []int{1})

	out, err := Render(buf, Options{ArrayName: "c", SourceName: "chime.wav"})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.HasPrefix(out.Body, "/*\n/* Generated by pcm2c v") {
		t.Errorf("Render() body lacks comment block:\n%s", out.Body)
	}

	if !strings.Contains(out.Body, "from chime.wav\n") {
		t.Errorf("Render() comment lacks source name:\n%s", out.Body)
	}

	if !strings.Contains(out.Body, "Sample rate: 44100 Hz, Channels: 1, Bits per sample: 16\n") {
		t.Errorf("Render() comment lacks format summary:\n%s", out.Body)
	}
}

func TestRender_Prefix(t *testing.T) {
	t.Parallel()

	out, err := Render(monoBuffer(16, []int{1}), Options{
		ArrayName: "p",
		NoComment: true,
		Prefix:    "/* john was here */",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	if !strings.HasPrefix(out.Body, "/* john was here */\n\n#define P_SAMPLE_NO 1") {
		t.Errorf("Render() body prefix wrong:\n%s", out.Body)
	}
}

func TestRender_Header(t *testing.T) {
	t.Parallel()

	out, err := Render(monoBuffer(8, []int{1, 2, 3}), Options{
		ArrayName: "click",
		NoComment: true,
		Header:    true,
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "#define CLICK_SAMPLE_NO 3\n\nextern const int8_t click[];"
	if out.Header != want {
		t.Errorf("Render() header = %q, want %q", out.Header, want)
	}

	if strings.Contains(out.Header, "{") {
		t.Error("header must not contain sample values")
	}
}

func TestRender_BoundExceeded(t *testing.T) {
	t.Parallel()

	buf := monoBuffer(16, make([]int, 11))

	out, err := Render(buf, Options{ArrayName: "big", NoComment: true, MaxSamples: 10})
	if out != nil {
		t.Error("Render() must produce no output when the bound is exceeded")
	}

	var scErr *SampleCountError
	if !errors.As(err, &scErr) {
		t.Fatalf("Render() error = %v, want *SampleCountError", err)
	}

	if scErr.Actual != 11 || scErr.Max != 10 {
		t.Errorf("SampleCountError = {%d, %d}, want {11, 10}", scErr.Actual, scErr.Max)
	}
}

func TestRender_BoundMet(t *testing.T) {
	t.Parallel()

	buf := monoBuffer(16, make([]int, 10))

	if _, err := Render(buf, Options{ArrayName: "ok", NoComment: true, MaxSamples: 10}); err != nil {
		t.Errorf("Render() error = %v, want nil at exactly the bound", err)
	}
}

func TestRender_InvalidArrayName(t *testing.T) {
	t.Parallel()

	_, err := Render(monoBuffer(16, []int{1}), Options{ArrayName: "1234", NoComment: true})
	if !errors.Is(err, ErrInvalidArrayName) {
		t.Errorf("Render() error = %v, want ErrInvalidArrayName", err)
	}
}

func TestRender_InvalidBitDepth(t *testing.T) {
	t.Parallel()

	_, err := Render(monoBuffer(0, []int{1}), Options{ArrayName: "x", NoComment: true})
	if !errors.Is(err, audio.ErrUnsupportedBitDepth) {
		t.Errorf("Render() error = %v, want audio.ErrUnsupportedBitDepth", err)
	}
}

func TestCheckBounds(t *testing.T) {
	t.Parallel()

	if err := CheckBounds(100, 0); err != nil {
		t.Errorf("CheckBounds() with no bound error = %v", err)
	}

	if err := CheckBounds(100, 100); err != nil {
		t.Errorf("CheckBounds() at bound error = %v", err)
	}

	if err := CheckBounds(101, 100); err == nil {
		t.Error("CheckBounds() above bound returned nil")
	}
}

func BenchmarkRender(b *testing.B) {
	data := make([]int, 44100)
	for i := range data {
		data[i] = i%65536 - 32768
	}
	buf := monoBuffer(16, data)
	opts := Options{ArrayName: "bench", NoComment: true}

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, _ = Render(buf, opts)
	}
}
