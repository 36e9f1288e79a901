package tracking

import "strconv"

const (
	DeliveryRegisteredEventName = "tracking.delivery_registered"
	CourierAssignedEventName    = "tracking.courier_assigned"
	ShipmentConfirmedEventName  = "tracking.shipment_confirmed"
	DeliveryConfirmedEventName  = "tracking.delivery_confirmed"
)

type DeliveryRegistered struct {
	OrderID int64  `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
}

func (e DeliveryRegistered) EventName() string { return DeliveryRegisteredEventName }
func (e DeliveryRegistered) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type CourierAssigned struct {
	OrderID int64  `json:"orderId"`
	Courier string `json:"courier"`
}

func (e CourierAssigned) EventName() string { return CourierAssignedEventName }
func (e CourierAssigned) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type ShipmentConfirmed struct {
	OrderID     int64  `json:"orderId"`
	ConfirmedBy string `json:"confirmedBy"`
}

func (e ShipmentConfirmed) EventName() string { return ShipmentConfirmedEventName }
func (e ShipmentConfirmed) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }

type DeliveryConfirmed struct {
	OrderID     int64  `json:"orderId"`
	ConfirmedBy string `json:"confirmedBy"`
}

func (e DeliveryConfirmed) EventName() string { return DeliveryConfirmedEventName }
func (e DeliveryConfirmed) EventKey() string  { return strconv.FormatInt(e.OrderID, 10) }
