package finance

import (
	"fmt"

	studentRepo "pcos/database/repository/student"
	"pcos/models"
)

// FinanceService maintains the student payment ledger.
type FinanceService interface {
	ProcessPayment(studentID string, amount float64, date string) error
	CalculateBalance(studentID string, totalFees float64) (float64, error)
}

// DefaultFinanceService is the production finance service.
type DefaultFinanceService struct {
	Students studentRepo.StudentRepository
}

// ProcessPayment applies a positive payment to the student ledger and
// appends it to the payment history.
func (s *DefaultFinanceService) ProcessPayment(studentID string, amount float64, date string) error {
	if amount <= 0 {
		return fmt.Errorf("payment amount must be positive")
	}
	return s.Students.Mutate(studentID, func(st *models.Student) error {
		st.FeesPaid += amount
		st.Balance -= amount
		st.TuitionBalance -= amount
		st.PaymentHistory = append(st.PaymentHistory, models.Payment{Amount: amount, Date: date})
		return nil
	})
}

// CalculateBalance recomputes and stores the student's outstanding balance
// against a total fees figure.
func (s *DefaultFinanceService) CalculateBalance(studentID string, totalFees float64) (float64, error) {
	var balance float64
	err := s.Students.Mutate(studentID, func(st *models.Student) error {
		st.Balance = totalFees - st.FeesPaid
		balance = st.Balance
		return nil
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}
