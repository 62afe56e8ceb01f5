package database

// DeleteAddress removes an address. An address still referenced by a
// customer cannot be deleted; that surfaces as ErrReferentialIntegrity and
// both rows stay intact.
func DeleteAddress(id uint) error {
	res := DB.Delete(&Address{}, id)
	if res.Error != nil {
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &PreconditionError{Op: "address deletion"}
	}
	return nil
}

// DeleteCustomer removes a customer. Customers with invoices on file cannot
// be deleted.
func DeleteCustomer(id uint) error {
	res := DB.Delete(&Customer{}, id)
	if res.Error != nil {
		return classifyError(res.Error)
	}
	if res.RowsAffected == 0 {
		return &PreconditionError{Op: "customer deletion"}
	}
	return nil
}
