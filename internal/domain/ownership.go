package domain

// RequireOwner verifica que callerID sea el vendedor dueño de la entidad.
// Los IDs son UUID canónicos en string; la comparación es por valor.
// Función pura: solo quien creó un cliente o pedido puede verlo o modificarlo.
func RequireOwner(ownerID, callerID string) error {
	if ownerID == "" || callerID == "" || ownerID != callerID {
		return ErrForbidden
	}
	return nil
}
