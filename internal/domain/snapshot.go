package domain

import "time"

// KPISnapshot é o resultado persistido de uma execução do pipeline
type KPISnapshot struct {
	RunID      string         `json:"run_id"`
	Source     string         `json:"source"`
	StartedAt  time.Time      `json:"started_at"`
	FinishedAt time.Time      `json:"finished_at"`
	Report     *DiscardReport `json:"report"`
	KPIs       *KPISet        `json:"kpis"`
}

// PipelineResult é o retorno de uma execução completa
type PipelineResult struct {
	Snapshot *KPISnapshot     `json:"snapshot"`
	Records  []EnrichedRecord `json:"-"`
	Warnings []string         `json:"warnings,omitempty"`
}
