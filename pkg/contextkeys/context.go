package contextkeys

// Ключи gin.Context (строковые, т.к. gin.Context.Set принимает string),
// по которым middleware кладет данные аутентификации
const (
	GinUserIDKey = "userID"
	GinRoleKey   = "role"
)
