package domain

import "time"

type Customer struct {
	CustomerID string    `json:"id" dynamodbav:"customer_id"`
	Name       string    `json:"name" dynamodbav:"name"`
	Email      string    `json:"email" dynamodbav:"email"`
	Phone      string    `json:"phone" dynamodbav:"phone"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateCustomerRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}
