package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/ledger"
	"marketplace/internal/core/domain/model/tracking"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// trackerVerifier adapts the tracker's read-only status view to the domain
// services.
type trackerVerifier struct {
	reader ports.DeliveryStatusReader
}

func (v trackerVerifier) IsDelivered(ctx context.Context, id kernel.OrderID) (bool, error) {
	status, err := v.reader.DeliveryStatus(ctx, id)
	if err != nil {
		return false, err
	}
	return status == tracking.Delivered, nil
}

// verifierFor returns nil when the platform has no tracker bound or the bound
// address does not resolve to a tracker.
func verifierFor(registry ports.TrackerRegistry, platform *ledger.Platform) services.DeliveryVerifier {
	address, bound := platform.Tracker()
	if !bound || registry == nil {
		return nil
	}

	reader, ok := registry.Resolve(address)
	if !ok {
		return nil
	}
	return trackerVerifier{reader: reader}
}
