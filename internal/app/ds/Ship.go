package ds

// @Schema(description="Ship model representing a starship")
type Ship struct {
	ID        int     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string  `gorm:"column:name;not null" json:"name"`
	WarpSpeed int     `gorm:"column:warp_speed" json:"warp_speed"`
	Faction   *string `gorm:"column:faction" json:"faction"`
}

func (Ship) TableName() string {
	return "ships"
}

// NewShip - данные для создания корабля, id назначает хранилище
type NewShip struct {
	Name      string  `json:"name"`
	WarpSpeed int     `json:"warp_speed"`
	Faction   *string `json:"faction"`
}

// Ship builds a row without an id, so storage always assigns a fresh one.
func (n NewShip) Ship() Ship {
	return Ship{
		Name:      n.Name,
		WarpSpeed: n.WarpSpeed,
		Faction:   n.Faction,
	}
}

// ListShipsFilter - фильтр списка кораблей по подстроке имени
type ListShipsFilter struct {
	Name *string
}

// NameFilter reports the substring to match, false when no filtering applies.
func (f ListShipsFilter) NameFilter() (string, bool) {
	if f.Name == nil || *f.Name == "" {
		return "", false
	}
	return *f.Name, true
}
