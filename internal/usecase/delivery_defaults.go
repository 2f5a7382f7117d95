package usecase

import "storeapi/internal/domain/model"

// DefaultDeliveryZones は初期投入用の料金表（DZD）。
// 管理画面から後でいくらでも直せるので、主要ウィラヤの標準値だけ入れる。
func DefaultDeliveryZones() []model.DeliveryZone {
	type z struct {
		wilaya   string
		zone     int
		delay    int
		home     int64
		stopdesk int64
		ret      int64
	}

	defaults := []z{
		{"Adrar", 4, 6, 1000, 600, 300},
		{"Chlef", 2, 3, 500, 350, 200},
		{"Laghouat", 3, 4, 700, 450, 250},
		{"Oum El Bouaghi", 2, 3, 600, 400, 200},
		{"Batna", 2, 3, 600, 400, 200},
		{"Bejaia", 2, 2, 500, 350, 200},
		{"Biskra", 3, 4, 700, 450, 250},
		{"Bechar", 4, 6, 1000, 600, 300},
		{"Blida", 1, 1, 400, 300, 150},
		{"Bouira", 2, 2, 500, 350, 200},
		{"Tamanrasset", 5, 8, 1400, 800, 400},
		{"Tebessa", 3, 4, 700, 450, 250},
		{"Tlemcen", 2, 3, 600, 400, 200},
		{"Tiaret", 2, 3, 600, 400, 200},
		{"Tizi Ouzou", 2, 2, 500, 350, 200},
		{"Alger", 1, 1, 400, 250, 150},
		{"Djelfa", 3, 4, 700, 450, 250},
		{"Jijel", 2, 3, 600, 400, 200},
		{"Setif", 2, 2, 500, 350, 200},
		{"Saida", 3, 4, 700, 450, 250},
		{"Skikda", 2, 3, 600, 400, 200},
		{"Sidi Bel Abbes", 2, 3, 600, 400, 200},
		{"Annaba", 2, 3, 600, 400, 200},
		{"Guelma", 2, 3, 600, 400, 200},
		{"Constantine", 2, 2, 500, 350, 200},
		{"Medea", 2, 2, 500, 350, 200},
		{"Mostaganem", 2, 3, 600, 400, 200},
		{"M'Sila", 3, 3, 600, 400, 200},
		{"Mascara", 2, 3, 600, 400, 200},
		{"Ouargla", 4, 5, 900, 550, 300},
		{"Oran", 1, 2, 450, 300, 150},
		{"El Bayadh", 4, 5, 900, 550, 300},
		{"Illizi", 5, 8, 1400, 800, 400},
		{"Bordj Bou Arreridj", 2, 2, 500, 350, 200},
		{"Boumerdes", 1, 1, 400, 300, 150},
		{"El Tarf", 3, 4, 700, 450, 250},
		{"Tindouf", 5, 8, 1400, 800, 400},
		{"Tissemsilt", 3, 3, 600, 400, 200},
		{"El Oued", 4, 5, 900, 550, 300},
		{"Khenchela", 3, 4, 700, 450, 250},
		{"Souk Ahras", 3, 4, 700, 450, 250},
		{"Tipaza", 1, 1, 400, 300, 150},
		{"Mila", 2, 3, 600, 400, 200},
		{"Ain Defla", 2, 2, 500, 350, 200},
		{"Naama", 4, 5, 900, 550, 300},
		{"Ain Temouchent", 2, 3, 600, 400, 200},
		{"Ghardaia", 4, 5, 900, 550, 300},
		{"Relizane", 2, 3, 600, 400, 200},
	}

	zones := make([]model.DeliveryZone, 0, len(defaults))
	for _, d := range defaults {
		zones = append(zones, model.DeliveryZone{
			Wilaya:        d.wilaya,
			Zone:          d.zone,
			DelayDays:     d.delay,
			HomePrice:     d.home,
			StopdeskPrice: d.stopdesk,
			ReturnPrice:   d.ret,
		})
	}
	return zones
}
