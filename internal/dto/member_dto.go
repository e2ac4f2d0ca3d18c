package dto

type ListMembersRequest struct {
	Search string `query:"search"`
	Role   string `query:"role" validate:"omitempty,oneof=all admin viewer uploader approver custom"`
}

type RoleStat struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}

type ListMembersResponse struct {
	Members   []UserResponse `json:"members"`
	Total     int            `json:"total"`
	RoleStats []RoleStat     `json:"role_stats"`
}
