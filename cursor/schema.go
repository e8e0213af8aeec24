package cursor

// Schema is a fluent builder for the field list Config needs, mirroring
// the teacher's original schema/field builder but emitting FieldSpec
// values instead of a map-keyed cursor codec.
type Schema[T any] struct {
	fields    []FieldSpec
	extractor ValueExtractor[T]
}

// NewSchema starts an empty schema for row type T.
func NewSchema[T any]() *Schema[T] {
	return &Schema[T]{}
}

// Field appends a bindingless, ascending-by-default sort field.
func (s *Schema[T]) Field(column string, typ TypeTag, dir Direction) *Schema[T] {
	s.fields = append(s.fields, Field(column, typ, dir))
	return s
}

// Asc appends an ascending field.
func (s *Schema[T]) Asc(column string, typ TypeTag) *Schema[T] {
	return s.Field(column, typ, Asc)
}

// Desc appends a descending field.
func (s *Schema[T]) Desc(column string, typ TypeTag) *Schema[T] {
	return s.Field(column, typ, Desc)
}

// Bound appends a field reached through a join binding (association
// descent, spec 4.3).
func (s *Schema[T]) Bound(binding, column string, typ TypeTag, dir Direction) *Schema[T] {
	s.fields = append(s.fields, BoundField(binding, column, typ, dir))
	return s
}

// WithExtractor overrides DefaultValueExtractor[T] for rows this schema
// builds a Config for, e.g. because T isn't a plain boil-tagged struct.
func (s *Schema[T]) WithExtractor(extractor ValueExtractor[T]) *Schema[T] {
	s.extractor = extractor
	return s
}

// Fields returns the accumulated field list, in declaration order.
func (s *Schema[T]) Fields() []FieldSpec {
	return s.fields
}

// Build finalizes the schema into a Config, applying the same field-list
// validation BuildConfig does.
func (s *Schema[T]) Build() (*Config[T], error) {
	return BuildConfig(s.fields, s.extractor)
}
