package manager

import (
	"sort"
	"time"

	"modelhub/pkg/types"
)

// Status builds the response for /status.
func (m *Manager) Status() types.StatusResponse {
	resp := types.StatusResponse{
		Available:      make([]types.ModelInfo, 0, len(m.available)),
		UptimeSeconds:  int64(time.Since(m.startTime) / time.Second),
		ServerTimeUnix: time.Now().Unix(),
	}
	for _, d := range m.available {
		resp.Available = append(resp.Available, types.ModelInfo{Name: d.Name, Type: string(d.Type)})
	}
	m.mu.RLock()
	resp.Instances = make([]types.InstanceStatus, 0, len(m.instances))
	for name, inst := range m.instances {
		resp.Instances = append(resp.Instances, types.InstanceStatus{
			Name:      name,
			Type:      string(inst.model.Type()),
			State:     string(StateActive),
			CreatedAt: inst.createdAt.Unix(),
		})
	}
	resp.Loading = len(m.building)
	m.mu.RUnlock()
	sort.Slice(resp.Instances, func(i, j int) bool { return resp.Instances[i].Name < resp.Instances[j].Name })
	return resp
}
