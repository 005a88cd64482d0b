package search

// Field names an entity attribute. The value doubles as the column name in
// relational stores.
type Field string

// Fields shared by every catalog entity.
const (
	FieldID         Field = "id"
	FieldName       Field = "name"
	FieldIsDeleted  Field = "is_deleted"
	FieldCreatedOn  Field = "created_on"
	FieldModifiedOn Field = "modified_on"
)

// Record is an entity that can be filtered and ordered in memory.
type Record interface {
	// Key is the identity used to break ordering ties.
	Key() string
	// Value returns the attribute named by f, or nil when the entity has no such field.
	Value(f Field) any
}
