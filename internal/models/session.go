package models

type Session struct {
	Name string `json:"name"`
	Role Role   `json:"role"`
}

func (s *Session) IsFarmer() bool {
	return s != nil && s.Role == RoleFarmer
}
