package mappers

import (
	"github.com/edubaze/paystack-recon-service/internal/domain"
	"github.com/edubaze/paystack-recon-service/internal/infrastructure/postgres/models"
)

func ToDomainPaymentRequest(model *models.PaymentRequestModel) *domain.PaymentRequest {
	return &domain.PaymentRequest{
		Name:             model.Name,
		Type:             model.Type,
		Status:           model.Status,
		EmailTo:          model.EmailTo,
		Currency:         model.Currency,
		Gateway:          model.Gateway,
		ReferenceDoctype: model.ReferenceDoctype,
		ReferenceName:    model.ReferenceName,
	}
}

func ToDomainIntegrationRequest(model *models.IntegrationRequestModel) *domain.IntegrationRequest {
	return &domain.IntegrationRequest{
		ID:               model.ID,
		ReferenceDoctype: model.ReferenceDoctype,
		ReferenceDocname: model.ReferenceDocname,
		Status:           model.Status,
	}
}

func ToDomainSalesOrder(model *models.SalesOrderModel) *domain.SalesOrder {
	items := make([]domain.OrderLineItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, domain.OrderLineItem{
			ItemCode: item.ItemCode,
			Qty:      item.Qty,
		})
	}
	return &domain.SalesOrder{
		Name:          model.Name,
		CustomerName:  model.CustomerName,
		ContactEmail:  model.ContactEmail,
		CustomerEmail: model.CustomerEmail,
		Items:         items,
	}
}

func ToDomainGatewaySettings(model *models.GatewaySettingsModel) *domain.GatewaySettings {
	return &domain.GatewaySettings{
		Name:      model.Name,
		SecretKey: model.SecretKey,
		PublicKey: model.PublicKey,
	}
}

func ToDomainCourseProvision(model *models.CourseSettingModel) domain.CourseProvision {
	return domain.CourseProvision{
		Item:          model.Item,
		EnrollmentKey: model.EnrollmentKey,
		CourseLink:    model.CourseLink,
	}
}
