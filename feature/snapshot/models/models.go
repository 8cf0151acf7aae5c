package models

// Entity type names. Each type is snapshotted to its own YAML document whose
// single top-level key is the type name.
const (
	TypeConfigParameters = "ir_config_parameters"
	TypeSequences        = "ir_sequences"
	TypeUserGroups       = "res_groups"
	TypeExternalIDs      = "ir_model_data"
	TypeModuleStates     = "module_states"
)

// ManifestFile is the run-level summary document. Its presence is the sole
// hard precondition for a directory to be importable.
const ManifestFile = "manifest.yml"

// ImportOrder is the fixed order in which entity types are reconciled.
// External id mappings go last because their records are about other records
// (model + res_id) and must only be rebound once those records had a chance
// to exist.
var ImportOrder = []string{
	TypeConfigParameters,
	TypeUserGroups,
	TypeSequences,
	TypeModuleStates,
	TypeExternalIDs,
}

// DocumentFile returns the document filename for an entity type.
func DocumentFile(configType string) string {
	return configType + ".yml"
}

// ReplayableStates are the module states worth exporting; uninstalled modules
// are not meaningful to replay on another instance.
var ReplayableStates = map[string]bool{
	"installed":  true,
	"to_install": true,
	"to_upgrade": true,
}

// ConfigParameter is a singleton-per-key system setting.
type ConfigParameter struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// Sequence is a number sequence. NumberNext is a live counter: import seeds
// it on create but never touches it on update.
type Sequence struct {
	Name            string `yaml:"name"`
	Code            string `yaml:"code"`
	Prefix          string `yaml:"prefix"`
	Suffix          string `yaml:"suffix"`
	Padding         int    `yaml:"padding"`
	NumberNext      int    `yaml:"number_next"`
	NumberIncrement int    `yaml:"number_increment"`
	Active          bool   `yaml:"active"`
}

// UserGroup is a user group projection. Implied groups are referenced by
// qualified external identifiers (module.name) because numeric ids are not
// portable across instances.
type UserGroup struct {
	Name       string   `yaml:"name"`
	CategoryID *string  `yaml:"category_id"`
	ImpliedIDs []string `yaml:"implied_ids"`
	Users      []string `yaml:"users"`
}

// ExternalID binds a qualified identifier (module.name) to a live record.
type ExternalID struct {
	Module   string `yaml:"module"`
	Name     string `yaml:"name"`
	Model    string `yaml:"model"`
	ResID    int    `yaml:"res_id"`
	NoUpdate bool   `yaml:"noupdate"`
}

// ModuleState records a module's installation state. Import never mutates
// installation state; it only reports drift.
type ModuleState struct {
	Name        string `yaml:"name"`
	State       string `yaml:"state"`
	AutoInstall bool   `yaml:"auto_install"`
	Sequence    int    `yaml:"sequence"`
}

// Manifest summarizes an export run and gates import eligibility.
type Manifest struct {
	ExportDate   string   `yaml:"export_date"`
	Version      string   `yaml:"odoo_version"`
	DatabaseUUID string   `yaml:"database_uuid"`
	ConfigTypes  []string `yaml:"config_types"`
	TotalRecords int      `yaml:"total_records"`
}
