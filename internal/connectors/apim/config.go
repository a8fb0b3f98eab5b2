package apim

import "fmt"

// DefaultManagementEndpoint is the Azure Resource Manager endpoint.
const DefaultManagementEndpoint = "https://management.azure.com"

// DefaultAPIVersion is the API Management management-plane API version.
const DefaultAPIVersion = "2022-08-01"

// Config holds the connection parameters for one API Management instance.
type Config struct {
	// SubscriptionID is the Azure subscription (required).
	SubscriptionID string

	// ResourceGroup is the resource group name (required).
	ResourceGroup string

	// ServiceName is the API Management service name (required).
	ServiceName string

	// ManagementEndpoint overrides the ARM endpoint. Used for sovereign
	// clouds and tests. Default: DefaultManagementEndpoint.
	ManagementEndpoint string

	// APIVersion overrides the management API version.
	APIVersion string
}

// Validate checks that required fields are present.
func (c *Config) Validate() error {
	if c.SubscriptionID == "" {
		return fmt.Errorf("apim: subscription ID is required")
	}
	if c.ResourceGroup == "" {
		return fmt.Errorf("apim: resource group is required")
	}
	if c.ServiceName == "" {
		return fmt.Errorf("apim: service name is required")
	}
	return nil
}

// serviceBase returns the management URL prefix for the service.
func (c *Config) serviceBase() string {
	endpoint := c.ManagementEndpoint
	if endpoint == "" {
		endpoint = DefaultManagementEndpoint
	}
	return fmt.Sprintf(
		"%s/subscriptions/%s/resourceGroups/%s/providers/Microsoft.ApiManagement/service/%s",
		endpoint, c.SubscriptionID, c.ResourceGroup, c.ServiceName,
	)
}

// apiVersion returns the effective management API version.
func (c *Config) apiVersion() string {
	if c.APIVersion != "" {
		return c.APIVersion
	}
	return DefaultAPIVersion
}
