package dto

type SimilarLanesResponse struct {
	TargetLane     *LaneResponse  `json:"target_lane"`
	SimilarLanes   []LaneResponse `json:"similar_lanes"`
	SharedPlaybook string         `json:"shared_playbook"`
}
