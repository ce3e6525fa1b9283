package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/weckerleben/bday-guests/internal/domain/guest"
	"github.com/weckerleben/bday-guests/internal/domain/pricing"
)

// costView bundles the stats, itemized costs and payment split for one
// guest filter.
type costView struct {
	Stats guest.Stats       `json:"stats"`
	Costs pricing.Breakdown `json:"costs"`
	Split pricing.Split     `json:"split"`
}

type summaryResponse struct {
	Spots     guest.SpotsSummary   `json:"spots"`
	Available guest.AvailableSpots `json:"available"`
	PayerOne  string               `json:"payerOne"`
	PayerTwo  string               `json:"payerTwo"`
	Invited   costView             `json:"invited"`
	Confirmed costView             `json:"confirmed"`
}

// Summary reports the two cost views the summary screen shows: everyone
// who has not declined, and confirmed guests only.
func (h *Handler) Summary(c *gin.Context) {
	guests, err := h.guests.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	priceList, err := h.pricing.Get(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}

	var invited, confirmed []guest.Guest
	for _, g := range guests {
		if g.Status != guest.StatusDeclined {
			invited = append(invited, g)
		}
		if g.Status == guest.StatusConfirmed {
			confirmed = append(confirmed, g)
		}
	}

	c.JSON(http.StatusOK, summaryResponse{
		Spots:     guest.ComputeSpotsSummary(guests),
		Available: guest.ComputeAvailableSpots(guests),
		PayerOne:  h.payment.PayerOneName,
		PayerTwo:  h.payment.PayerTwoName,
		Invited:   h.costView(invited, priceList),
		Confirmed: h.costView(confirmed, priceList),
	})
}

func (h *Handler) costView(guests []guest.Guest, priceList *pricing.Pricing) costView {
	costs := pricing.ComputeCosts(guests, priceList)
	return costView{
		Stats: guest.ComputeStats(guests),
		Costs: costs,
		Split: pricing.SplitTotal(costs.Total, h.payment.Contribution),
	}
}
