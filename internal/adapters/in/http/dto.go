package http

type NewOrder struct {
	Seller string `json:"seller"`
	Amount string `json:"amount"`
	Value  string `json:"value"`
}

type OrderCreated struct {
	OrderID int64 `json:"orderId"`
}

type Order struct {
	ID     int64  `json:"id"`
	Buyer  string `json:"buyer"`
	Seller string `json:"seller"`
	Amount string `json:"amount"`
	Status string `json:"status"`
}

type Escrow struct {
	OrderID int64  `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
	Amount  string `json:"amount"`
	Status  string `json:"status"`
}

type Dispute struct {
	OrderID  int64  `json:"orderId"`
	Exists   bool   `json:"exists"`
	OpenedBy string `json:"openedBy"`
	Reason   string `json:"reason"`
	Outcome  string `json:"outcome"`
}

type CanRaiseDispute struct {
	CanRaiseDispute bool `json:"canRaiseDispute"`
}

type RaiseDispute struct {
	Reason string `json:"reason"`
}

type ResolveDispute struct {
	Outcome int `json:"outcome"`
}

type Platform struct {
	Owner          string `json:"owner"`
	Arbitrator     string `json:"arbitrator"`
	FeeBasisPoints int    `json:"feeBasisPoints"`
	Balance        string `json:"balance"`
	Custody        string `json:"custody"`
	Tracker        string `json:"tracker"`
	TrackerBound   bool   `json:"trackerBound"`
}

type SetTracking struct {
	Tracker string `json:"tracker"`
}

type SetArbitrator struct {
	Arbitrator string `json:"arbitrator"`
}

type SetFee struct {
	BasisPoints int `json:"basisPoints"`
}

type Withdrawal struct {
	Amount string `json:"amount"`
}

type NewDelivery struct {
	OrderID int64  `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
}

type SetCourier struct {
	Courier string `json:"courier"`
}

type Delivery struct {
	Found   bool   `json:"found"`
	OrderID int64  `json:"orderId"`
	Buyer   string `json:"buyer"`
	Seller  string `json:"seller"`
	Courier string `json:"courier"`
	Status  string `json:"status"`
}

type DeliveryStatus struct {
	Status string `json:"status"`
}
