package domain

// ProbeStatus reports backend reachability. Warning is set when the probe
// succeeded only through a degraded query path; Error is set when the
// probe failed entirely. The two are mutually exclusive with OK.
type ProbeStatus struct {
	OK      bool
	Warning string
	Error   string
}
