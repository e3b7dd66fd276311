package usecase

import (
	"fmt"
	"net/mail"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Nombre) == "" {
		errors = append(errors, ValidationError{"nombre", "is required"})
	} else if len(input.Nombre) > 200 {
		errors = append(errors, ValidationError{"nombre", "must not exceed 200 characters"})
	}

	if strings.TrimSpace(input.Email) != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errors = append(errors, ValidationError{"email", "is invalid"})
		}
	}

	return errors
}

func ValidateRecordInteractionInput(input RecordInteractionInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Canal) == "" {
		errors = append(errors, ValidationError{"canal", "is required"})
	}

	if input.Rol != "agente" && input.Rol != "lead" {
		errors = append(errors, ValidationError{"rol", "must be agente or lead"})
	}

	if strings.TrimSpace(input.Mensaje) == "" {
		errors = append(errors, ValidationError{"mensaje", "is required"})
	}

	return errors
}

func ValidateGenerateMessageInput(input GenerateMessageInput) []ValidationError {
	var errors []ValidationError

	// Canal y objetivo desconocidos caen en las ramas genéricas del copy,
	// así que solo se exige que vengan.
	if strings.TrimSpace(input.Canal) == "" {
		errors = append(errors, ValidationError{"canal", "is required"})
	}
	if strings.TrimSpace(input.Objetivo) == "" {
		errors = append(errors, ValidationError{"objetivo", "is required"})
	}

	return errors
}

func joinValidationErrors(errs []ValidationError) string {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return msg
}
