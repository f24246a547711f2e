package model

// swagger:model
type Base struct {
	ID int `json:"id"`
}

// SetID 由存储层在插入时调用，之后不再变更
func (b *Base) SetID(id int) { b.ID = id }
