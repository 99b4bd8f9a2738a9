package dto

// ProgramBucketResponse pontos pendentes de um programa, com detalhamento
// pelas contas conhecidas.
type ProgramBucketResponse struct {
	Program   string           `json:"program"`
	Total     int64            `json:"total"`
	ByAccount map[string]int64 `json:"by_account,omitempty"`
}

// PendingPointsResponse agregação de pontos não recebidos por programa.
type PendingPointsResponse struct {
	Items []ProgramBucketResponse `json:"items"`
}
