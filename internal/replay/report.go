package replay

import (
	"fmt"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/v3/process"
)

// Report is Verify's result: how many rounds were replayed, every place
// the engine disagreed with the log (Findings, which fail verification)
// and every place the driver overrode engine state to match the log's
// independently-seeded tile sequence (Coercions, which are expected and
// recorded for audit, never for failure).
type Report struct {
	Rounds    int        `json:"rounds"`
	Findings  []Finding  `json:"findings"`
	Coercions []Coercion `json:"coercions"`
	HostInfo  string     `json:"host_info,omitempty"`
}

// OK reports whether the replayed log is fully consistent with the engine:
// zero Findings. Coercions never affect this.
func (r *Report) OK() bool { return len(r.Findings) == 0 }

// WithHostInfo appends a best-effort process line (RSS, CPU count) to the
// report, for an operator correlating a slow verify run with host load.
// A gopsutil read failure just leaves HostInfo unset; it never fails
// verification itself.
func (r *Report) WithHostInfo() *Report {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return r
	}
	var rssKB uint64
	if mi, err := proc.MemoryInfo(); err == nil && mi != nil {
		rssKB = mi.RSS / 1024
	}
	r.HostInfo = fmt.Sprintf("pid=%d rss_kb=%d cpus=%d", os.Getpid(), rssKB, runtime.NumCPU())
	return r
}
