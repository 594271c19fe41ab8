package store

import "github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

// Container names in the Cosmos database. Each container declares a fixed
// partition key attribute; queries issued through the gateway run
// cross-partition, writes must supply the owning partition value.
const (
	ContainerCustomers          = "Customers"
	ContainerProducts           = "Products"
	ContainerSubscriptions      = "Subscriptions"
	ContainerInvoices           = "Invoices"
	ContainerPayments           = "Payments"
	ContainerPromotions         = "Promotions"
	ContainerSecurityLogs       = "SecurityLogs"
	ContainerOrders             = "Orders"
	ContainerSupportTickets     = "SupportTickets"
	ContainerDataUsage          = "DataUsage"
	ContainerServiceIncidents   = "ServiceIncidents"
	ContainerKnowledgeDocuments = "KnowledgeDocuments"
)

// AllContainers lists every container the gateway serves.
var AllContainers = []string{
	ContainerCustomers,
	ContainerProducts,
	ContainerSubscriptions,
	ContainerInvoices,
	ContainerPayments,
	ContainerPromotions,
	ContainerSecurityLogs,
	ContainerOrders,
	ContainerSupportTickets,
	ContainerDataUsage,
	ContainerServiceIncidents,
	ContainerKnowledgeDocuments,
}

// PartitionKeyString builds a partition key for containers partitioned on a
// string attribute (Customers, Products and KnowledgeDocuments partition on /id).
func PartitionKeyString(v string) azcosmos.PartitionKey {
	return azcosmos.NewPartitionKeyString(v)
}

// PartitionKeyNumber builds a partition key for containers partitioned on a
// numeric parent identifier (customer_id, subscription_id, invoice_id, product_id).
func PartitionKeyNumber(v int64) azcosmos.PartitionKey {
	return azcosmos.NewPartitionKeyNumber(float64(v))
}
