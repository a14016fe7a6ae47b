package recon

import (
	"context"
	"fmt"
	"strings"

	"github.com/edubaze/paystack-recon-service/internal/domain"
)

const enrollmentMailSubject = "Course Enrollment"

// fulfill matches the settled order's line items against the course catalog
// and mails the enrollment credentials. Returns whether a mail went out.
func (uc *DefaultReconUsecase) fulfill(ctx context.Context, result *domain.VerificationResult) (bool, error) {
	order, err := uc.Documents.GetSalesOrder(ctx, result.Metadata.ReferenceName)
	if err != nil {
		return false, err
	}

	provisions, err := uc.Catalog.ListCourseProvisions(ctx)
	if err != nil {
		return false, err
	}

	matched := MatchProvisions(order.Items, provisions)
	if len(matched) == 0 {
		return false, nil
	}

	customerEmail := order.ContactEmail
	if customerEmail == "" {
		customerEmail = order.CustomerEmail
	}
	if customerEmail == "" {
		return false, fmt.Errorf("sales order %s: %w", order.Name, domain.ErrMissingCustomerEmail)
	}

	mail := domain.EnrollmentMail{
		Recipient: customerEmail,
		Subject:   enrollmentMailSubject,
		Body:      RenderEnrollmentBody(order.CustomerName, matched),
	}
	if err := uc.Mailer.Send(ctx, mail); err != nil {
		return false, fmt.Errorf("send enrollment mail for %s: %w", order.Name, err)
	}
	return true, nil
}

// MatchProvisions returns the catalog entries whose item code appears among
// the order's line items. Matching is exact string equality, case and
// whitespace included. Catalog order is preserved.
func MatchProvisions(items []domain.OrderLineItem, provisions []domain.CourseProvision) []domain.CourseProvision {
	codes := make(map[string]struct{}, len(items))
	for _, item := range items {
		codes[item.ItemCode] = struct{}{}
	}

	var matched []domain.CourseProvision
	for _, provision := range provisions {
		if _, ok := codes[provision.Item]; ok {
			matched = append(matched, provision)
		}
	}
	return matched
}

// RenderEnrollmentBody builds the notification mail listing a link and
// enrollment key per matched course, with explicit fallbacks for blanks.
func RenderEnrollmentBody(customerName string, matched []domain.CourseProvision) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dear %s,\n\n", customerName)
	b.WriteString("Please find the details for accessing your course below:\n")

	for _, provision := range matched {
		link := provision.CourseLink
		if link == "" {
			link = "No link available"
		}
		key := provision.EnrollmentKey
		if key == "" {
			key = "No Key available"
		}
		fmt.Fprintf(&b, "\n- Link: %s,\n- Course enrollment Key: %s\n", link, key)
	}

	b.WriteString("\nThank you for your purchase!")
	return b.String()
}
