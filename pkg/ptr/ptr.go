package ptr

// Ptr retorna um ponteiro para o valor informado
func Ptr[T any](v T) *T {
	return &v
}
