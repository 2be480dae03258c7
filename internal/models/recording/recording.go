package models

type ChunkRequest struct {
	Chunk string `json:"chunk"`
}

type StateResponse struct {
	State string `json:"state"`
}

type StopResponse struct {
	AudioURL   string `json:"audioUrl"`
	Transcript string `json:"transcript"`
	Size       int    `json:"size"`
}
