package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/weblarek/weblarek/pkg/api"
	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/events"
	"github.com/weblarek/weblarek/pkg/logging"
	"github.com/weblarek/weblarek/pkg/shop"
	"github.com/weblarek/weblarek/pkg/store"
	"github.com/weblarek/weblarek/pkg/view"
)

var (
	checkoutItems   []string
	checkoutPayment string
	checkoutAddress string
	checkoutEmail   string
	checkoutPhone   string
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Run a scripted basket-to-order round trip",
	Long: `Fetch the catalog, fill a basket, and walk the two-step checkout the way
the web client does: every interaction goes through the event bus, the store
mutates and validates, and subscribed printers re-render from event payloads.
Items default to the first two priced products when --item is not given.`,
	RunE: runCheckout,
}

func init() {
	checkoutCmd.Flags().StringArrayVar(&checkoutItems, "item", nil, "product ID to buy (repeatable)")
	checkoutCmd.Flags().StringVar(&checkoutPayment, "payment", string(shop.PaymentNonCash), "payment method (нал, безнал)")
	checkoutCmd.Flags().StringVar(&checkoutAddress, "address", "", "delivery address")
	checkoutCmd.Flags().StringVar(&checkoutEmail, "email", "", "contact email")
	checkoutCmd.Flags().StringVar(&checkoutPhone, "phone", "", "contact phone")
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(c *cobra.Command, _ []string) error {
	logger := logging.Default()
	bus := events.NewBus(events.WithLogger(logger))
	st := store.New(bus, store.WithLogger(logger))
	st.Bind()

	// Diagnostics only: trace every emission at debug level.
	bus.SubscribeAll(func(evt events.Event) {
		logger.Debug().Str("topic", evt.Topic.String()).Msg("Event")
	})

	bus.On(store.TopicBasketChanged, func(evt events.Event) {
		if changed, ok := evt.Payload.(store.BasketChanged); ok {
			fmt.Printf("Корзина: %d шт., %s\n",
				changed.Basket.Count(), shop.FormatPrice(&changed.Basket.Total))
		}
	})
	for _, step := range []shop.Step{shop.StepDelivery, shop.StepContact} {
		bus.On(store.ErrorsTopic(step), func(evt events.Event) {
			changed, ok := evt.Payload.(store.FormErrorsChanged)
			if !ok {
				return
			}
			for field, msg := range changed.Errors {
				fmt.Printf("  ! %s: %s\n", field, msg)
			}
		})
	}

	client := api.New(viper.GetString("api_url"),
		api.WithCDN(viper.GetString("cdn_url")),
		api.WithLogger(logger),
	)

	st.SetCatalog(client.CatalogOrEmpty(c.Context()))

	for _, id := range pickItems(st) {
		bus.Emit(store.TopicBasketToggle, store.BasketToggle{ProductID: id})
	}

	if err := st.OpenOrder(); err != nil {
		return errors.WrapResource("open", "order", "", err)
	}

	// The two forms, field by field, as the widgets would emit them.
	fields := []store.FieldInput{
		{Step: shop.StepDelivery, Field: shop.FieldPayment, Value: checkoutPayment},
		{Step: shop.StepDelivery, Field: shop.FieldAddress, Value: checkoutAddress},
		{Step: shop.StepContact, Field: shop.FieldEmail, Value: checkoutEmail},
		{Step: shop.StepContact, Field: shop.FieldPhone, Value: checkoutPhone},
	}
	for _, input := range fields {
		bus.Emit(store.FieldInputTopic(input.Step, input.Field), input)
	}

	// No network call while either step still has errors.
	if err := st.ReadyToSubmit(); err != nil {
		return fmt.Errorf("order not ready (%s): fix the fields above", st.Phase())
	}

	result, err := client.SubmitOrder(c.Context(), st.Order())
	if err != nil {
		return err
	}
	st.MarkSubmitted(result)

	fmt.Println(view.BuildSuccess(result).Description)
	fmt.Printf("Заказ %s оформлен.\n", result.ID)
	return nil
}

// pickItems returns the requested product IDs, defaulting to the first two
// priced catalog items.
func pickItems(st *store.Store) []string {
	if len(checkoutItems) > 0 {
		return checkoutItems
	}
	var ids []string
	for _, p := range st.Catalog() {
		if p.Priced() {
			ids = append(ids, p.ID)
		}
		if len(ids) == 2 {
			break
		}
	}
	return ids
}
