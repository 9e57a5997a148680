package user

// Role はユーザーの役割を表します。
type Role string

const (
	RoleEmployee Role = "employee"
	RoleManager  Role = "manager"
)

// User はユーザーエンティティです。ManagerID は社員のみが持ち、マネージャーでは空です。
type User struct {
	ID        string
	Name      string
	Email     string
	Role      Role
	ManagerID string
}

// IsManager はユーザーがマネージャーかどうかを返します。
func (u *User) IsManager() bool {
	return u != nil && u.Role == RoleManager
}

// HasManager は承認者が割り当てられているかどうかを返します。
func (u *User) HasManager() bool {
	return u != nil && u.ManagerID != ""
}

// Clone はユーザーのコピーを返します。
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	return &cp
}

// IsValidRole は役割が既知の値かどうかを返します。
func IsValidRole(role Role) bool {
	switch role {
	case RoleEmployee, RoleManager:
		return true
	default:
		return false
	}
}
