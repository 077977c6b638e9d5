// GPU usage estimation. No per-process GPU counter is read anywhere;
// the value shown next to a process is guessed from its name and its
// own CPU usage. Records carry gpu_estimated so callers can tell.
package snapshot

import "strings"

// appToken identifies this application's own processes in the estimate.
const appToken = "sysdeck"

// gpuRule maps a set of name substrings to a CPU-usage coefficient and
// a cap. Matching is case-sensitive; the wire shape of the estimate
// depends on these exact thresholds, so they must not be reordered.
type gpuRule struct {
	tokens      []string
	coefficient float64
	cap         float64
}

// gpuRules is evaluated top-down, first match wins. Browsers offload
// some compositing, game engines are heavily GPU-bound, vendor
// utilities touch the GPU lightly, and everything else gets a floor
// estimate.
var gpuRules = []gpuRule{
	{tokens: []string{"chrome", "firefox", "edge"}, coefficient: 0.3, cap: 15.0},
	{tokens: []string{"game", "unity", "unreal"}, coefficient: 2.0, cap: 85.0},
	{tokens: []string{"nvidia", "amd", "gpu"}, coefficient: 1.5, cap: 25.0},
	{tokens: []string{appToken}, coefficient: 0.1, cap: 5.0},
}

// defaultGPURule applies when no token matches.
var defaultGPURule = gpuRule{coefficient: 0.05, cap: 3.0}

// estimateGPUUsage guesses a process's GPU usage percent from its name
// and normalized CPU usage.
func estimateGPUUsage(name string, cpuUsage float64) float64 {
	for _, rule := range gpuRules {
		if rule.matches(name) {
			return rule.apply(cpuUsage)
		}
	}
	return defaultGPURule.apply(cpuUsage)
}

func (r gpuRule) matches(name string) bool {
	for _, token := range r.tokens {
		if strings.Contains(name, token) {
			return true
		}
	}
	return false
}

func (r gpuRule) apply(cpuUsage float64) float64 {
	estimate := cpuUsage * r.coefficient
	if estimate > r.cap {
		return r.cap
	}
	return estimate
}
