package resolvers

import customerService "crm.GO/service/customer"

// Validation rules are shared with the CSV/JSON import paths.

func validateEmail(email string) error {
	return customerService.ValidateEmail(email)
}

func validatePhone(phone string) error {
	return customerService.ValidatePhone(phone)
}
