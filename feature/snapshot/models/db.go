package models

// Live collection (table) names on the target instance.
const (
	CollectionParameters   = "ir_config_parameter"
	CollectionSequences    = "ir_sequence"
	CollectionGroups       = "res_groups"
	CollectionModelData    = "ir_model_data"
	CollectionModules      = "ir_module_module"
	CollectionCategories   = "ir_module_category"
	CollectionUsers        = "res_users"
	CollectionGroupUsers   = "res_groups_users_rel"
	CollectionGroupImplied = "res_groups_implied_rel"
)

// The Live* structs mirror the live tables just closely enough for tests to
// migrate a sqlite database with the expected shape. The engine itself never
// uses them; it addresses collections dynamically through the record store.

// LiveConfigParameter maps the ir_config_parameter table.
type LiveConfigParameter struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Key   string `gorm:"column:key"`
	Value string `gorm:"column:value"`
}

func (LiveConfigParameter) TableName() string { return CollectionParameters }

// LiveSequence maps the ir_sequence table.
type LiveSequence struct {
	ID              int64  `gorm:"column:id;primaryKey"`
	Name            string `gorm:"column:name"`
	Code            string `gorm:"column:code"`
	Prefix          string `gorm:"column:prefix"`
	Suffix          string `gorm:"column:suffix"`
	Padding         int    `gorm:"column:padding"`
	NumberNext      int    `gorm:"column:number_next"`
	NumberIncrement int    `gorm:"column:number_increment"`
	Active          bool   `gorm:"column:active"`
}

func (LiveSequence) TableName() string { return CollectionSequences }

// LiveGroup maps the res_groups table.
type LiveGroup struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	Name       string `gorm:"column:name"`
	CategoryID int64  `gorm:"column:category_id"`
}

func (LiveGroup) TableName() string { return CollectionGroups }

// LiveModelData maps the ir_model_data table.
type LiveModelData struct {
	ID       int64  `gorm:"column:id;primaryKey"`
	Module   string `gorm:"column:module"`
	Name     string `gorm:"column:name"`
	Model    string `gorm:"column:model"`
	ResID    int    `gorm:"column:res_id"`
	NoUpdate bool   `gorm:"column:noupdate"`
}

func (LiveModelData) TableName() string { return CollectionModelData }

// LiveModule maps the ir_module_module table.
type LiveModule struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	Name        string `gorm:"column:name"`
	State       string `gorm:"column:state"`
	AutoInstall bool   `gorm:"column:auto_install"`
	Sequence    int    `gorm:"column:sequence"`
}

func (LiveModule) TableName() string { return CollectionModules }

// LiveCategory maps the ir_module_category table.
type LiveCategory struct {
	ID           int64  `gorm:"column:id;primaryKey"`
	CompleteName string `gorm:"column:complete_name"`
}

func (LiveCategory) TableName() string { return CollectionCategories }

// LiveUser maps the res_users table.
type LiveUser struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Login string `gorm:"column:login"`
}

func (LiveUser) TableName() string { return CollectionUsers }

// LiveGroupUser maps the res_groups_users_rel membership table.
type LiveGroupUser struct {
	GID int64 `gorm:"column:gid"`
	UID int64 `gorm:"column:uid"`
}

func (LiveGroupUser) TableName() string { return CollectionGroupUsers }

// LiveGroupImplied maps the res_groups_implied_rel table.
type LiveGroupImplied struct {
	GID int64 `gorm:"column:gid"`
	HID int64 `gorm:"column:hid"`
}

func (LiveGroupImplied) TableName() string { return CollectionGroupImplied }

// LiveTables lists every live table model for test migrations.
func LiveTables() []any {
	return []any{
		&LiveConfigParameter{},
		&LiveSequence{},
		&LiveGroup{},
		&LiveModelData{},
		&LiveModule{},
		&LiveCategory{},
		&LiveUser{},
		&LiveGroupUser{},
		&LiveGroupImplied{},
	}
}
