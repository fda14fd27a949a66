// Package profile records which instructions a program spends its
// time executing, and plots them as a bar chart.
package profile

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/thelolagemann/gomeboy-core/internal/cpu"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Entry is the number of times an instruction kind was executed.
type Entry struct {
	Kind  cpu.Kind
	Count uint64
}

// Histogram is a cpu.Tracer counting executed instructions, by
// opcode and by kind.
type Histogram struct {
	mu      sync.Mutex
	opcodes [256]uint64
	kinds   map[cpu.Kind]uint64
	total   uint64
}

// NewHistogram returns an empty Histogram.
func NewHistogram() *Histogram {
	return &Histogram{kinds: make(map[cpu.Kind]uint64)}
}

// Trace implements cpu.Tracer.
func (h *Histogram) Trace(_ uint16, opcode uint8, instruction cpu.Instruction) {
	h.mu.Lock()
	h.opcodes[opcode]++
	h.kinds[instruction.Kind]++
	h.total++
	h.mu.Unlock()
}

// Opcode returns the number of times opcode was executed.
func (h *Histogram) Opcode(opcode uint8) uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.opcodes[opcode]
}

// Total returns the number of instructions traced.
func (h *Histogram) Total() uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.total
}

// Top returns the n most executed instruction kinds, most
// executed first. n <= 0 returns every kind.
func (h *Histogram) Top(n int) []Entry {
	h.mu.Lock()
	entries := make([]Entry, 0, len(h.kinds))
	for k, c := range h.kinds {
		entries = append(entries, Entry{Kind: k, Count: c})
	}
	h.mu.Unlock()

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count == entries[j].Count {
			return entries[i].Kind < entries[j].Kind
		}
		return entries[i].Count > entries[j].Count
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

// WritePlot draws the n most executed kinds as a bar chart,
// writing it to w as a PNG.
func (h *Histogram) WritePlot(w io.Writer, n int) error {
	entries := h.Top(n)

	values := make(plotter.Values, len(entries))
	names := make([]string, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Count)
		names[i] = e.Kind.String()
	}

	p := plot.New()
	p.Title.Text = "Instructions executed"
	p.Y.Label.Text = "Count"

	bars, err := plotter.NewBarChart(values, vg.Points(16))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(names...)

	c := vgimg.New(vg.Points(float64(120+24*len(entries))), 4*vg.Inch)
	p.Draw(draw.New(c))

	_, err = vgimg.PngCanvas{Canvas: c}.WriteTo(w)
	return err
}

// Save writes the plot of the n most executed kinds to the
// PNG file at path.
func (h *Histogram) Save(path string, n int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := h.WritePlot(f, n); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
