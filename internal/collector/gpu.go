package collector

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"sysdash/internal/snapshot"
)

// gatherGPUStats queries nvidia-smi for per-GPU utilization and memory.
// Hosts without the tool (or without NVIDIA hardware) yield an empty
// list; a malformed reply degrades to a single error-string entry.
func gatherGPUStats() snapshot.Value {
	out, err := exec.Command(
		"nvidia-smi",
		"--query-gpu=index,name,utilization.gpu,memory.total,memory.used,memory.free,temperature.gpu",
		"--format=csv,noheader,nounits",
	).Output()
	if err != nil {
		return snapshot.List{}
	}

	gpus, err := parseNvidiaSMI(string(out))
	if err != nil {
		return snapshot.List{fmt.Sprintf("Error getting GPU stats: %v", err)}
	}
	return gpus
}

func parseNvidiaSMI(out string) (snapshot.List, error) {
	gpus := snapshot.List{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != 7 {
			return nil, fmt.Errorf("unexpected nvidia-smi line %q", line)
		}
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}

		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse gpu index %q: %w", fields[0], err)
		}

		gpu := snapshot.Mapping{
			{Key: "id", Value: id},
			{Key: "name", Value: fields[1]},
		}
		numeric := []struct {
			key   string
			field string
		}{
			{"load", fields[2]},
			{"memory_total", fields[3]},
			{"memory_used", fields[4]},
			{"memory_free", fields[5]},
			{"temperature", fields[6]},
		}
		for _, n := range numeric {
			if v, err := strconv.ParseFloat(n.field, 64); err == nil {
				gpu.Set(n.key, v)
			} else {
				gpu.Set(n.key, snapshot.NA)
			}
		}
		gpus = append(gpus, gpu)
	}
	return gpus, nil
}
