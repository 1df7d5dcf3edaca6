package request

type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=user provider admin"`
}

type RenameCategoryRequest struct {
	OldName string `json:"old_name" validate:"required"`
	NewName string `json:"new_name" validate:"required"`
}
