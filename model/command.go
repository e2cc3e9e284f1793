package model

// Command is a stored how-to: what it does, where it runs, and the line to type.
type Command struct {
	ID          int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	HowTo       string `json:"howTo" gorm:"column:how_to;not null"`
	Platform    string `json:"platform" gorm:"column:platform;not null"`
	CommandLine string `json:"commandLine" gorm:"column:command_line;not null"`
}

func (Command) TableName() string {
	return "commands"
}
