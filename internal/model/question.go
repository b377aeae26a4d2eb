package model

// Question is a single quiz question with up to five answer options.
//
// Answer holds the correct option in storage. It never leaves the service
// layer raw: before a question is returned to a client the field is replaced
// with base64(id + answer). That encoding is display hiding only — anyone
// holding the question id can reverse it — and must not be treated as an
// access control.
type Question struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	Category string  `json:"category" gorm:"size:8;not null;index"`
	Question string  `json:"question" gorm:"size:1024;not null"`
	OptionA  *string `json:"option_a,omitempty" gorm:"column:option_a;size:256"`
	OptionB  *string `json:"option_b,omitempty" gorm:"column:option_b;size:256"`
	OptionC  *string `json:"option_c,omitempty" gorm:"column:option_c;size:256"`
	OptionD  *string `json:"option_d,omitempty" gorm:"column:option_d;size:256"`
	OptionE  *string `json:"option_e,omitempty" gorm:"column:option_e;size:256"`
	Answer   string  `json:"answer" gorm:"size:256;not null"`
}

// TableName keeps the legacy table name.
func (Question) TableName() string {
	return "quiz"
}
