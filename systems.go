package spyce

// Built-in system catalogs, in the same block format LoadSystem reads from
// disk. Distances are meters, angles radians, times seconds.
var builtinSystems = map[string]string{
	"kerbol": kerbolCfg,
	"solar":  solarCfg,
}

const kerbolCfg = `
SYSTEM
{
	name = Kerbol

	BODY
	{
		name = Kerbol
		gravitational_parameter = 1.1723328e18
		radius = 261600000
		rotational_period = 432000
	}
	BODY
	{
		name = Moho
		primary = Kerbol
		gravitational_parameter = 1.6860938e11
		radius = 250000
		rotational_period = 1210000
		ORBIT
		{
			semi_major_axis = 5263138304
			eccentricity = 0.2
			inclination = 0.12217304763960307
			longitude_of_ascending_node = 1.2217304763960306
			argument_of_periapsis = 0.2617993877991494
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Eve
		primary = Kerbol
		gravitational_parameter = 8.1717302e12
		radius = 700000
		rotational_period = 80500
		ORBIT
		{
			semi_major_axis = 9832684544
			eccentricity = 0.01
			inclination = 0.03665191429188092
			longitude_of_ascending_node = 0.2617993877991494
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Gilly
		primary = Eve
		gravitational_parameter = 8289449.8
		radius = 13000
		rotational_period = 28255
		ORBIT
		{
			semi_major_axis = 31500000
			eccentricity = 0.55
			inclination = 0.20943951023931953
			longitude_of_ascending_node = 1.3962634015954636
			argument_of_periapsis = 0.17453292519943295
			mean_anomaly_at_epoch = 0.9
		}
	}
	BODY
	{
		name = Kerbin
		primary = Kerbol
		gravitational_parameter = 3.5316e12
		radius = 600000
		rotational_period = 21549.425
		ORBIT
		{
			semi_major_axis = 13599840256
			eccentricity = 0
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Mun
		primary = Kerbin
		gravitational_parameter = 6.5138398e10
		radius = 200000
		rotational_period = 138984.38
		ORBIT
		{
			semi_major_axis = 12000000
			eccentricity = 0
			mean_anomaly_at_epoch = 1.7
		}
	}
	BODY
	{
		name = Minmus
		primary = Kerbin
		gravitational_parameter = 1.7658e9
		radius = 60000
		rotational_period = 40400
		ORBIT
		{
			semi_major_axis = 47000000
			eccentricity = 0
			inclination = 0.10471975511965977
			longitude_of_ascending_node = 1.3613568165555769
			argument_of_periapsis = 0.6632251157578452
			mean_anomaly_at_epoch = 0.9
		}
	}
	BODY
	{
		name = Duna
		primary = Kerbol
		gravitational_parameter = 3.0136321e11
		radius = 320000
		rotational_period = 65517.859
		ORBIT
		{
			semi_major_axis = 20726155264
			eccentricity = 0.051
			inclination = 0.0010471975511965976
			longitude_of_ascending_node = 2.3649211364523164
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Ike
		primary = Duna
		gravitational_parameter = 1.8568369e10
		radius = 130000
		rotational_period = 65517.862
		ORBIT
		{
			semi_major_axis = 3200000
			eccentricity = 0.03
			inclination = 0.003490658503988659
			mean_anomaly_at_epoch = 1.7
		}
	}
	BODY
	{
		name = Dres
		primary = Kerbol
		gravitational_parameter = 2.1484489e10
		radius = 138000
		rotational_period = 34800
		ORBIT
		{
			semi_major_axis = 40839348203
			eccentricity = 0.145
			inclination = 0.08726646259971647
			longitude_of_ascending_node = 4.886921905584122
			argument_of_periapsis = 1.5707963267948966
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Jool
		primary = Kerbol
		gravitational_parameter = 2.8252800e14
		radius = 6000000
		rotational_period = 36000
		ORBIT
		{
			semi_major_axis = 68773560320
			eccentricity = 0.05
			inclination = 0.022759093446006057
			longitude_of_ascending_node = 0.9075712110370514
			mean_anomaly_at_epoch = 0.1
		}
	}
	BODY
	{
		name = Laythe
		primary = Jool
		gravitational_parameter = 1.9620000e12
		radius = 500000
		rotational_period = 52980.879
		ORBIT
		{
			semi_major_axis = 27184000
			eccentricity = 0
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Vall
		primary = Jool
		gravitational_parameter = 2.0748150e11
		radius = 300000
		rotational_period = 105962.09
		ORBIT
		{
			semi_major_axis = 43152000
			eccentricity = 0
			mean_anomaly_at_epoch = 0.9
		}
	}
	BODY
	{
		name = Tylo
		primary = Jool
		gravitational_parameter = 2.8252800e12
		radius = 600000
		rotational_period = 211926.36
		ORBIT
		{
			semi_major_axis = 68500000
			eccentricity = 0
			inclination = 0.00043633231299858233
			mean_anomaly_at_epoch = 3.14
		}
	}
	BODY
	{
		name = Bop
		primary = Jool
		gravitational_parameter = 2.4868349e9
		radius = 65000
		rotational_period = 544507.43
		ORBIT
		{
			semi_major_axis = 128500000
			eccentricity = 0.235
			inclination = 0.2617993877991494
			longitude_of_ascending_node = 0.17453292519943295
			argument_of_periapsis = 0.4363323129985824
			mean_anomaly_at_epoch = 0.9
		}
	}
	BODY
	{
		name = Pol
		primary = Jool
		gravitational_parameter = 7.2170208e8
		radius = 44000
		rotational_period = 901902.62
		ORBIT
		{
			semi_major_axis = 179890000
			eccentricity = 0.171
			inclination = 0.07417649320975901
			longitude_of_ascending_node = 0.03490658503988659
			argument_of_periapsis = 0.2617993877991494
			mean_anomaly_at_epoch = 0.9
		}
	}
	BODY
	{
		name = Eeloo
		primary = Kerbol
		gravitational_parameter = 7.4410815e10
		radius = 210000
		rotational_period = 19460
		ORBIT
		{
			semi_major_axis = 90118820000
			eccentricity = 0.26
			inclination = 0.10733774899765178
			longitude_of_ascending_node = 0.8726646259971648
			argument_of_periapsis = 4.537856055185257
			mean_anomaly_at_epoch = 3.14
		}
	}
}
`

const solarCfg = `
SYSTEM
{
	name = Solar

	BODY
	{
		name = Sun
		gravitational_parameter = 1.32712440018e20
		radius = 6.957e8
		rotational_period = 2192832
	}
	BODY
	{
		name = Mercury
		primary = Sun
		gravitational_parameter = 2.2032e13
		radius = 2439700
		rotational_period = 5067031.68
		ORBIT
		{
			semi_major_axis = 5.790905e10
			eccentricity = 0.20563
			inclination = 0.12225804517090935
			longitude_of_ascending_node = 0.8435309954660183
			argument_of_periapsis = 0.5083167107903827
			mean_anomaly_at_epoch = 3.0510257241672365
		}
	}
	BODY
	{
		name = Venus
		primary = Sun
		gravitational_parameter = 3.24859e14
		radius = 6051800
		rotational_period = -20997360
		ORBIT
		{
			semi_major_axis = 1.08209e11
			eccentricity = 0.006772
			inclination = 0.05924886665277955
			longitude_of_ascending_node = 1.3383304704244547
			argument_of_periapsis = 0.9579063082431644
			mean_anomaly_at_epoch = 0.8746717546438198
		}
	}
	BODY
	{
		name = Earth
		primary = Sun
		gravitational_parameter = 3.986004418e14
		radius = 6371000
		rotational_period = 86164.0905
		ORBIT
		{
			semi_major_axis = 1.49598023e11
			eccentricity = 0.0167086
			inclination = 8.726646259971648e-7
			longitude_of_ascending_node = -0.19653524206528987
			argument_of_periapsis = 1.9933026769209921
			mean_anomaly_at_epoch = 6.259047404163161
		}
	}
	BODY
	{
		name = Moon
		primary = Earth
		gravitational_parameter = 4.9048695e12
		radius = 1737400
		rotational_period = 2360591.5
		ORBIT
		{
			semi_major_axis = 3.84399e8
			eccentricity = 0.0549
			inclination = 0.08980019001510829
			longitude_of_ascending_node = 2.1830578283944476
			argument_of_periapsis = 5.552765001216804
			mean_anomaly_at_epoch = 2.3609069821963597
		}
	}
	BODY
	{
		name = Mars
		primary = Sun
		gravitational_parameter = 4.282837e13
		radius = 3389500
		rotational_period = 88642.663
		ORBIT
		{
			semi_major_axis = 2.279392e11
			eccentricity = 0.0934
			inclination = 0.03228859116189509
			longitude_of_ascending_node = 0.8649771297322456
			argument_of_periapsis = 5.000040325560046
			mean_anomaly_at_epoch = 0.33880331457775843
		}
	}
	BODY
	{
		name = Jupiter
		primary = Sun
		gravitational_parameter = 1.26686534e17
		radius = 69911000
		rotational_period = 35730
		ORBIT
		{
			semi_major_axis = 7.78570e11
			eccentricity = 0.0489
			inclination = 0.02274164021134226
			longitude_of_ascending_node = 1.7534337756602002
			argument_of_periapsis = 4.779884740425793
			mean_anomaly_at_epoch = 0.3494149156953419
		}
	}
	BODY
	{
		name = Saturn
		primary = Sun
		gravitational_parameter = 3.7931187e16
		radius = 58232000
		rotational_period = 38018
		ORBIT
		{
			semi_major_axis = 1.433530e12
			eccentricity = 0.0565
			inclination = 0.04337482191206698
			longitude_of_ascending_node = 1.9838461504050892
			argument_of_periapsis = 5.923510162022194
			mean_anomaly_at_epoch = 5.533042813175454
		}
	}
	BODY
	{
		name = Uranus
		primary = Sun
		gravitational_parameter = 5.793939e15
		radius = 25362000
		rotational_period = -62064
		ORBIT
		{
			semi_major_axis = 2.875040e12
			eccentricity = 0.046381
			inclination = 0.013491395117916106
			longitude_of_ascending_node = 1.2916489804252438
			argument_of_periapsis = 1.6929494482379492
			mean_anomaly_at_epoch = 2.482532111727951
		}
	}
	BODY
	{
		name = Neptune
		primary = Sun
		gravitational_parameter = 6.836529e15
		radius = 24622000
		rotational_period = 57996
		ORBIT
		{
			semi_major_axis = 4.498396e12
			eccentricity = 0.008678
			inclination = 0.030856975464263032
			longitude_of_ascending_node = 2.3000646830255396
			argument_of_periapsis = 4.822973031908723
			mean_anomaly_at_epoch = 4.472022229339602
		}
	}
	BODY
	{
		name = Pluto
		primary = Sun
		gravitational_parameter = 8.71e11
		radius = 1188300
		rotational_period = -551856.7
		ORBIT
		{
			semi_major_axis = 5.90638e12
			eccentricity = 0.2488
			inclination = 0.2995089940843858
			longitude_of_ascending_node = 1.9250871085315233
			argument_of_periapsis = 1.9867782524244768
			mean_anomaly_at_epoch = 0.25359364065483676
		}
	}
}
`
